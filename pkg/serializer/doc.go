// Copyright (c) 2026, The craftplan Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package serializer reads and writes craftplan documents as JSON, YAML, or
// aligned text tables.
//
// Writing:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//		return err
//	}
//
// Values implementing Tabular are rendered as a table with one row per
// element; any other value is flattened into FIELD/VALUE pairs.
//
// Reading:
//
//	def, err := serializer.FromFile[domain.Definition]("crafting.yaml")
//
// The format is chosen from the file extension. Paths starting with http://
// or https:// are fetched with HTTPReader.
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, report)
package serializer
