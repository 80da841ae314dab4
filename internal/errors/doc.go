// Package errors provides the structured error type used across hev-builder.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata:
//
//	err := errors.NotFoundf("roster %s not found", id).
//	    WithMeta("roster_id", id)
//
// Wrapping keeps the code of a wrapped *Error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load roster")
//	}
//
// The configuration builder fails a build only with CodeMissingSelection:
//
//	if errors.IsMissingSelection(err) {
//	    field := errors.GetMeta(err)["field"]
//	}
//
// Budget and completeness violations of a built unit are not errors; they are
// reported by the validator as a result value.
//
// Config structs are checked with the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Lookup == nil {
//	    vb.RequiredField("Lookup")
//	}
//	return vb.Build()
package errors
