// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

/*
Package metrics exposes Prometheus instrumentation for Fridgechef.

All collectors are registered with the default registry through promauto and
served at /metrics by promhttp.

# Available Metrics

HTTP:
  - fridgechef_api_requests_total{method, endpoint, status_code}
  - fridgechef_api_request_duration_seconds{method, endpoint}
  - fridgechef_api_active_requests
  - fridgechef_api_rate_limit_hits_total{endpoint}

Storage:
  - fridgechef_db_query_duration_seconds{operation, table}
  - fridgechef_db_query_errors_total{operation, table}

Recommendations and catalog:
  - fridgechef_recommendations_total
  - fridgechef_recommendation_availability_percent
  - fridgechef_catalog_fetches_total{source, result}

Resilience and auth:
  - fridgechef_circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - fridgechef_circuit_breaker_requests_total{name, result}
  - fridgechef_circuit_breaker_state_transitions_total{name, from, to}
  - fridgechef_auth_failures_total{reason}

Endpoint labels use chi route patterns, not raw paths, to keep cardinality bounded.
*/
package metrics
