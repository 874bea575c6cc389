package model

import "errors"

var ErrInvalidRiskLevel = errors.New("invalid risk level")
