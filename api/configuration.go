package api

import "time"

type Configuration struct {
	Env              string
	AppName          string
	Port             string
	AppUrl           string
	JwtSigningSecret string
	DefaultTimeout   time.Duration
}
