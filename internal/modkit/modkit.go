package modkit

import "leadlens/internal/modkit/module"

// Module is re-exported so constructors can return it without a second import
type Module = module.Module
