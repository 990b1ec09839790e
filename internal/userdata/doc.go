// Package userdata resolves the on-disk layout under ~/.provctl, honoring the
// PROVCTL_HOME and PROVCTL_PROVIDERS environment overrides.
package userdata
