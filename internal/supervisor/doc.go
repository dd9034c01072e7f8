// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

/*
Package supervisor runs the long-lived Fridgechef services under suture v4.

	RootSupervisor ("fridgechef")
	├── DataSupervisor ("data-layer")
	│   ├── cache-cleanup (catalog cache expiry sweep)
	│   └── CatalogWarmerService (remote catalogs only)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with backoff once FailureThreshold is
exceeded. Supervisor events are logged through sutureslog into the
process-wide slog logger, which in turn writes through zerolog.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(recipeCache)
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	return tree.Serve(ctx)

Services added to a child layer must be removed from that layer;
tokens are not valid on the root.
*/
package supervisor
