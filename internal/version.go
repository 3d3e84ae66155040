/*
 * Copyright the nest-go authors. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package internal

var (
	// GitCommit is the commit this binary was built from. It is set at
	// build time via -ldflags "-X github.com/nestio/nest-go/internal.GitCommit=...".
	GitCommit string

	// BuildTime is the UTC time this binary was built, set the same way.
	BuildTime string
)
