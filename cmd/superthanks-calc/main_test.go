package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMainFunction(t *testing.T) {
	// Test that rootCmd is defined and has expected properties
	assert.NotNil(t, rootCmd, "rootCmd should be defined")
	assert.Equal(t, "superthanks-calc", rootCmd.Use)
	assert.Contains(t, rootCmd.Short, "Super Thanks")
	assert.Contains(t, rootCmd.Long, "Superthanks Calc")
}

func TestScanCommandRegistered(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "scan")
	assert.NotNil(t, scanCmd.Flags().Lookup("config"))
	assert.NotNil(t, scanCmd.Flags().Lookup("output"))
	assert.NotNil(t, scanCmd.Flags().Lookup("headless"))
	assert.NotNil(t, scanCmd.Flags().Lookup("timeout"))
}
