/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

// Version is a QR code version number, in the range [MinVersion, MaxVersion].
// The side length of the resulting symbol is 4*Version + 17 modules.
type Version int

// Size returns the side length, in modules, of a symbol of this version.
func (v Version) Size() int {
	return int(v)*4 + 17
}

// Mask identifies one of the eight standard XOR mask patterns, or -1 to mean
// "choose automatically" when passed to EncodeSegments.
type Mask int8

// Module is a single dark/light cell of a QR code symbol. A non-zero value
// is dark.
type Module byte
