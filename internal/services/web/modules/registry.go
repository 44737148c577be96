package modules

import "github.com/yiroma/budgetmanagement/internal/services/web/modules/public"

// DefaultPublicModules returns the modules mounted on every server.
func DefaultPublicModules() []Module {
	return []Module{
		public.New(),
	}
}
