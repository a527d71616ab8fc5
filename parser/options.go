/*
NAME
  options.go

DESCRIPTION
  options.go provides functional options for Parser's constructors, in
  the same functional-option style as validate.Option; a Parser Option
  cannot fail, so unlike validate.Option it returns no error.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package parser

import "github.com/ausocean/utils/logging"

// Option configures a Parser at construction.
type Option func(*Parser)

// WithLogger directs diagnostic output to log. A Parser built without
// this option logs nothing; parse errors are always returned, never
// only logged.
func WithLogger(log logging.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}
