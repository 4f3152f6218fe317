// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pwd-strength/pkg/hibp"
	"pwd-strength/pkg/strength"
)

type analyzeApi struct {
	analyzer *strength.Analyzer
}

func (a *analyzeApi) analyzePassword(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := strength.DefaultOptions()
	if len(req.Profiles) > 0 {
		opts.AttackerProfiles = req.Profiles
	}
	if req.Breach != nil {
		opts.SkipBreachCheck = !*req.Breach
	}

	report, err := a.analyzer.Analyze(c.Request.Context(), req.Password, opts)
	if err != nil {
		// The engine only errors on option validation, before any analysis.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (a *analyzeApi) attackerProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profiles": strength.DefaultProfiles()})
}

// RegisterAnalyzeApi loads the wordlist and wires the analysis endpoints.
// A missing wordlist fails server startup, it is not a per-request concern.
func RegisterAnalyzeApi(group *gin.RouterGroup, wordlistFile string, breachCheck bool) error {
	wordlist, err := strength.LoadWordlist(wordlistFile)
	if err != nil {
		return err
	}

	var checker strength.BreachChecker
	if breachCheck {
		checker = hibp.NewClient()
	}

	analyzer, err := strength.NewAnalyzer(wordlist, checker)
	if err != nil {
		return err
	}

	a := &analyzeApi{analyzer: analyzer}

	group.POST("/password", a.analyzePassword)
	group.GET("/profiles", a.attackerProfiles)

	return nil
}
