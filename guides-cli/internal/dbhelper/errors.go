package dbhelper

import "errors"

var (
	ErrSavedWhenOnline = errors.New("review was not accepted by the server")
	ErrNoRestaurants   = errors.New("no restaurants available online or offline")
)
