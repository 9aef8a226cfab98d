// Package resolver produces the configuration tree of a process.
//
// Resolution is a single synchronous pass:
//  1. load the environment document <base>/<config dir>/<environment>
//     (required) and deep-merge <base>/<config dir>/default beneath it;
//  2. overlay the dotfile key by key, unless the environment is "test";
//  3. overlay the environment variables key by key, unless the environment
//     is "test" and ALLOW_TEST_ENV_OVERRIDE is not set;
//  4. record the environment name under [models.EnvironmentNameKey].
//
// Overlay values "true" and "false" (any case) are stored as booleans.
//
// # Key projection
//
// With neither CONFIG_ENV_PREFIX nor CONFIG_ENV_SEPARATOR set, an overlay key
// is used as a dotted path, so "db.host" nests under "db". Otherwise the
// prefix is stripped and the separator replaced with "." and the result is
// matched case-insensitively against paths already in the tree:
//
//   - a dotfile key uses the matched path only if the raw key is not also a
//     live environment variable;
//   - an environment variable uses the matched path whenever it exists;
//   - in every other case the raw key is stored verbatim as one top-level key.
package resolver
