package infra

import "github.com/casbin/casbin/v2"

// NewEnforcer loads the domain-scoped RBAC model that guards the payroll
// routes. Policies are loaded per organization at request time.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath)
}
