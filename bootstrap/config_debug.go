//go:build !release

package bootstrap

const enableDiagnostics = true
