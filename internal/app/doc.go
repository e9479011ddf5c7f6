// Package app composes the tracker's services into a running application.
//
// It is a composition layer, not a business logic layer:
//
//	internal/app/
//	├── application.go      # Application struct and service wiring
//	├── domain/             # Domain models (pure data structures)
//	│   ├── task/           # Tasks with priority and completion
//	│   ├── habit/          # Habits with the per-day progress log
//	│   └── mood/           # Append-only mood entries and the fixed set
//	├── storage/            # Storage interfaces and implementations
//	│   ├── interfaces.go   # TaskStore, HabitStore, MoodStore
//	│   ├── memory/         # In-memory implementation for tests/dev
//	│   └── mongo/          # MongoDB implementation for production
//	├── services/           # Business logic per domain area
//	├── httpapi/            # HTTP API handlers and routing
//	└── metrics/            # Prometheus collectors
//
// Business rules and validation live in internal/app/services/; the stores
// only persist and stamp timestamps; httpapi only translates HTTP to service
// calls and errors to status codes.
package app
