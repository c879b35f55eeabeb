// Package errors provides structured errors for the gearset project.
//
// Errors carry a Code, a human readable message, an optional cause and
// free-form metadata:
//
//	err := errors.NotFound("catalog not found").
//	    WithMeta("catalog", name)
//
// Wrapping preserves the code of a wrapped *Error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load catalog")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // fall back to the bundled catalog
//	}
//
// Validation of configs and catalog records goes through the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", record.Name, vb)
//	errors.ValidateRange("workers", cfg.Workers, 1, 256, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Layer guidelines:
//
// Repository layer returns NotFound/InvalidArgument and wraps storage errors.
// Orchestrators validate inputs and wrap repository errors with context.
// The optimizer core returns coded errors and never logs them.
package errors
