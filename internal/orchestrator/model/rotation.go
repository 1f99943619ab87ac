package model

import "time"

type RotationEntry struct {
	Index        int        `json:"index"`
	Name         string     `json:"name"`
	URL          string     `json:"url"`
	LastDeployed *time.Time `json:"lastDeployed"`
	DeployCount  int        `json:"deployCount"`
}

type RotationLog struct {
	Deployments      []RotationEntry `json:"deployments"`
	TotalDeployments int             `json:"totalDeployments"`
	LastUpdated      *time.Time      `json:"lastUpdated,omitempty"`
}

func NewRotationLog(deployments []Deployment) RotationLog {
	r := RotationLog{Deployments: []RotationEntry{}}
	r.Align(deployments)
	return r
}

func (r *RotationLog) Align(deployments []Deployment) {
	if len(r.Deployments) > len(deployments) {
		r.Deployments = r.Deployments[:len(deployments)]
	}
	for i, d := range deployments {
		if i < len(r.Deployments) {
			r.Deployments[i].Index = i
			r.Deployments[i].Name = d.Name
			r.Deployments[i].URL = d.URL
			continue
		}
		r.Deployments = append(r.Deployments, RotationEntry{Index: i, Name: d.Name, URL: d.URL})
	}
}

// NextTarget returns the index of the first never-deployed entry, otherwise the
// entry with the oldest LastDeployed. Ties keep registry order.
func (r *RotationLog) NextTarget() int {
	oldest := -1
	for i, e := range r.Deployments {
		if e.LastDeployed == nil {
			return i
		}
		if oldest == -1 || e.LastDeployed.Before(*r.Deployments[oldest].LastDeployed) {
			oldest = i
		}
	}
	return oldest
}

func (r *RotationLog) Mark(index int, now time.Time) {
	t := now.UTC()
	r.Deployments[index].LastDeployed = &t
	r.Deployments[index].DeployCount++
	r.TotalDeployments++
}
