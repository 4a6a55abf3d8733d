// Package config provides configuration management for the Rata toolchain.
//
// Package: config
// Title: Rata Configuration Management
// Description: This package implements configuration loading from TOML and
//              YAML files with format auto-detection, default values,
//              environment variable overrides (RATA_* by convention), change
//              watching, and rule-based validation. It drives the settings of
//              the CLI, REPL, playground server, and TUI: log level and
//              format, prompt and history location, bind address, and parser
//              limits.
// Author: The Rata Team
// Version: v0.1.1
// Created: 2026-02-12
// Modified: 2026-03-02
//
// Change History:
// - 2026-02-12 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-03-02 v0.1.1: Show explicit FormatAuto in the usage example
//
// Usage:
//   import rataconfig "github.com/rata-lang/rata/core/config"
//
//   cfg, err := rataconfig.LoadWithOptions("rata.toml", rataconfig.LoadOptions{
//     Format:    rataconfig.FormatAuto,
//     EnvPrefix: "RATA",
//     Defaults: map[string]interface{}{
//       "log.level":         "info",
//       "parser.max_depth":  200,
//     },
//   })
//
//   level := cfg.GetString("log.level")         // RATA_LOG_LEVEL overrides
//   depth := cfg.GetInt("parser.max_depth", 200)
package config
