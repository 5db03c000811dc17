// Package runconfig holds process-side configuration: the environment
// variables that bind a run to an oracle instance and credential, and an
// optional YAML run-parameter file tuning the exploration loop's behavior.
package runconfig
