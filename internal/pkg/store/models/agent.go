package models

import "context"

// Agent is the authenticated caller acting on a request.
type Agent struct {
	ID         string `json:"user_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	BranchCode string `json:"branch_code"`
}

// DemoAgent stands in for callers whose token carries no usable claims.
var DemoAgent = Agent{
	ID:         "demo_user",
	Name:       "Demo Agent",
	Role:       "agent",
	BranchCode: "001",
}

type agentKey struct{}

func WithAgent(ctx context.Context, agent Agent) context.Context {
	return context.WithValue(ctx, agentKey{}, agent)
}

// AgentFromContext returns the request's agent, or DemoAgent when none was attached.
func AgentFromContext(ctx context.Context) Agent {
	if ctx != nil {
		if agent, ok := ctx.Value(agentKey{}).(Agent); ok {
			return agent
		}
	}
	return DemoAgent
}
