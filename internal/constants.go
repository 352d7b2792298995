/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	DefaultBaseURL    = "https://cobr.ai/tournaments"
	DefaultPathSuffix = "/rounds"

	// heading text of the accordion holding Swiss rounds
	SwissHeading = "Swiss"
	// name cobr.ai renders for the empty side of a bye pairing
	ByePlayer = "(Bye)"
)
