// Package packet implements the encoders and decoders for the payloads of the
// MaxsunSync pipe protocol.
//
// This package is not designed to be accessed by end users, all interaction
// should occur via the Client in the gomaxsun package.
package packet
