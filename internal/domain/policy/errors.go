package policy

import "errors"

var ErrPolicyNotFound = errors.New("leave policy not found")
