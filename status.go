package catalog

import (
	"time"
)

type systemStatus struct {
	Status          string      `json:"status"`
	Time            time.Time   `json:"time"`
	Uptime          string      `json:"uptime"`
	GitHash         string      `json:"gitHash"`
	ApplicationName string      `json:"applicationName"`
	InstanceName    string      `json:"instanceName"`
	Environment     Environment `json:"environment"`

	Web        HTTP       `json:"web"`
	Repository Repository `json:"repository"`
}

func (c *Container) systemStatus() systemStatus {
	return systemStatus{
		Status:          "online", // later: maintenance mode, degraded etc.
		Time:            time.Now(),
		Uptime:          time.Since(c.startedAt).Round(time.Second).String(),
		GitHash:         gitHash(),
		ApplicationName: c.Config.ApplicationName,
		InstanceName:    c.Config.InstanceName,
		Environment:     c.Config.Environment,

		Web:        c.Config.HTTP,
		Repository: c.Config.Repository,
	}
}
