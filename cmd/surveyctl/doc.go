// Package main provides surveyctl, the CLI for the tree survey backend.
//
// The backend is a REST API over a PostGIS-enabled PostgreSQL database that
// stores users, survey areas, plots with GeoJSON boundaries, trees, videos
// and the tree-view links between trees and videos.
//
// # Quick Start
//
//	# Run database migrations
//	surveyctl db migrate
//
//	# Start the server
//	surveyctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string (PostGIS required)
//   - PORT: Server port (default: 8800)
//   - BIND_ADDRESS: Server bind address (default: 0.0.0.0)
//   - SURVEY_CONFIG_PATH: Directory holding treesurvey.yml
//   - SURVEY_CORS_ORIGINS: Comma-separated list of allowed CORS origins
//   - SURVEY_BCRYPT_COST: bcrypt work factor for signup password hashing
//   - SURVEY_LOG_LEVEL: Log level (debug, info, warn, error)
package main
