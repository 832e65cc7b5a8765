//go:build release

package bootstrap

const enableDiagnostics = false
