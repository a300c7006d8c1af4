// Package services wraps the external Argon token validation provider.
//
// # Validator Interface
//
// The [Validator] interface is the single capability the rest of the
// system needs: given an account ID and the credential the client
// presented, report whether the pair is currently valid. Handlers and
// engines depend on the interface so tests can inject deterministic
// fakes.
//
// # Argon Implementation
//
// [ArgonService] performs one GET per check against the Argon
// validation endpoint. It fails closed: transport errors, non-200
// statuses, undecodable bodies and explicit valid:false responses all
// resolve to false, each with a logged warning. It never returns an
// error to callers, performs no retries, and inherits the injected
// client's timeout behavior.
package services
