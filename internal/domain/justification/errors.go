package justification

import "errors"

var (
	ErrJustificationNotFound = errors.New("justification not found")
	ErrAlreadyProcessed      = errors.New("justification has already been approved or rejected")
)
