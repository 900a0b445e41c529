package routes

// Routes package wires all routing for the Region Dashboard Service
//
// Layout:
// - api.go: API routes (/v1/*)
// - web.go: Web routes (/, /docs, /status)
// - routes.go: Package notes
//
// Usage:
// routes.SetupAllRoutes(router, dashboardController, adminController)
