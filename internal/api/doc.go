// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the internal application services.
//
// Handlers return errors instead of writing failure responses themselves;
// Handle passes any returned error to shared.RespondWithFailure, which is
// the only place a failure becomes an HTTP response.
package api
