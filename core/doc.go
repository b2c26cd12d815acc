// Package core contains the business logic for the portfolio page enhancer.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (EnhancementReport, AuditResult, JSON-LD records)
// - enhancer: The DOM enhancement pass (annotation, lazy-loading, sitemap block)
// - schema: Structured-data (JSON-LD) builders and head injection
// - density: Keyword-density text analysis
// - audit: Remote page audit service
// - sitemap: XML sitemap generation
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, notifier)
//
// # Design Principles
//
// The core package follows clean architecture principles:
//   - No external framework dependencies beyond the DOM library
//   - All external dependencies are injected via interfaces
//   - Business logic is testable in isolation
//   - The page document is an externally-owned mutable resource; services hold
//     no state across invocations
//
// # Usage Example
//
//	import (
//	    "portfolio-enhancer-api/core/enhancer"
//	    "portfolio-enhancer-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,    // implements interfaces.Cache
//	    HTTPClient: myClient,   // implements interfaces.HTTPClient
//	    Logger:     myLogger,   // implements interfaces.Logger
//	    Notifier:   myNotifier, // implements interfaces.Notifier (optional)
//	}
//
//	service := enhancer.NewService(deps, config.DefaultOptions())
//	report, err := service.Enhance(ctx, doc)
package core
