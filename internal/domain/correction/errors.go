package correction

import "errors"

var (
	ErrCorrectionNotFound         = errors.New("correction not found")
	ErrCorrectionAlreadyProcessed = errors.New("correction has already been approved or rejected")
)
