package app

import module "github.com/yiroma/budgetmanagement/internal/services/web/module"

// Config captures the composition inputs for the web root handler.
type Config struct {
	PublicModules []module.Module
}
