/* Copyright © 2025-2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	ToolName    = "pairtool"
	ToolVersion = "0.3.0"
)
