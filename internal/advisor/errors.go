package advisor

import "errors"

var (
	ErrDeviceIDRequired  = errors.New("device id is required")
	ErrAdvisorAlreadySet = errors.New("advisor already set for this turn")
	ErrInvalidLabel      = errors.New("invalid advisor label")
	ErrNotRouted         = errors.New("turn has not been routed")
)
