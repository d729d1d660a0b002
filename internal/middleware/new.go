package middleware

import (
	"meetsync/pkg/log"
)

type Middleware struct {
	l         log.Logger
	jwtSecret string
}

func New(l log.Logger, jwtSecret string) Middleware {
	return Middleware{
		l:         l,
		jwtSecret: jwtSecret,
	}
}
