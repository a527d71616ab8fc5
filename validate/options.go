/*
NAME
  options.go

DESCRIPTION
  options.go provides functional options for Validator's constructor, in
  the same functional-option style as parser.Option; a Validator Option
  may return an error, which New wraps and returns.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package validate

import "github.com/ausocean/utils/logging"

// Option configures a Validator at construction.
type Option func(*Validator) error

// WithLogger directs diagnostic output to log. Conformance findings are
// never logged through this path; they are always retrieved via Issues,
// IssuesSingleSet and Result.
func WithLogger(log logging.Logger) Option {
	return func(v *Validator) error {
		v.log = log
		return nil
	}
}
