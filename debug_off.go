//go:build !quadboard_debug
// +build !quadboard_debug

package quadboard

const debugChecks = false
