/*
Copyright 2026 The mpsc Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package logging defines the logr verbosity conventions used across the module.
package logging

const (
	// DEFAULT is the default (always-on) verbosity.
	DEFAULT = 2
	// VERBOSE is for high-level operational detail.
	VERBOSE = 3
	// DEBUG is for lifecycle detail useful when diagnosing channel behavior.
	DEBUG = 4
	// TRACE is for very fine-grained detail; expect noise.
	TRACE = 5
)
