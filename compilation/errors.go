package compilation

import "errors"

var (
	ErrUnknownEntity       = errors.New("unknown entity")
	ErrUnknownParamGroup   = errors.New("unknown param group")
	ErrDuplicateParamGroup = errors.New("duplicate param group")
	ErrDuplicateRoute      = errors.New("duplicate route")
	ErrDuplicateParam      = errors.New("duplicate parameter")
	ErrPathParamConflict   = errors.New("path parameter conflict")
)
