package domain

import "errors"

// ErrNotInSession is an error thrown when an upload or close is attempted
// with no open session for the user
var ErrNotInSession = errors.New("no open session")

// ErrEmptySession is an error thrown when a session is closed with zero records
var ErrEmptySession = errors.New("session has no files")

// ErrNoValidFiles is an error thrown when no record in a closed session
// parsed both episode and quality
var ErrNoValidFiles = errors.New("no valid files")
