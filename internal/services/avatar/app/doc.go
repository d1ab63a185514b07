// Package server hosts the avatar HTTP surface.
//
// Every path under the configured prefix renders the avatar for its text;
// every other path renders the default avatar. Input problems never become
// error responses, only method mismatches do.
package server
