// Package internal contains the infrastructure behind the swipeaction engine:
// logging, caching, theming, localisation and icon rasterisation.
// Types and functions in this package are not part of the public API.
package internal
