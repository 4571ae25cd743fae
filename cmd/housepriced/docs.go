package main

// General API documentation for swaggo. Regenerate with `swag init -g cmd/housepriced/docs.go`.
//
// @title           housepriced API
// @version         1.0
// @description     Predicts California house prices from six census block features.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
