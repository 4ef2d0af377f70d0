package model

// Environment names used in environment.name
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)
