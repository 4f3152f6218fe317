// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

var (
	// analyze, audit, serve
	wordlistFile string
	// root
	verbose bool
	// root
	profile bool
	// root
	pprofPort uint16
	// analyze
	interactive bool
	// analyze
	noBreach bool
	// analyze
	attackerProfiles []string
	// audit
	inputFile string
	// audit
	outFile string
	// audit
	overwrite bool
	// audit
	threads int
	// serve
	selfTLS bool
	// serve
	tlsCert string
	// serve
	tlsKey string
	// serve
	port uint16
)
