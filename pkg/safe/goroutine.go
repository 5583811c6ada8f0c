// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package safe

import (
	"runtime/debug"

	"github.com/go-arcade/navtree/pkg/log"
)

// Go 在新 goroutine 中执行 f，panic 被恢复并记录日志
func Go(name string, f func()) {
	go Do(name, f)
}

// Do 执行 f 并恢复 panic，返回是否发生了 panic
func Do(name string, f func()) (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			log.Errorw("recovered from panic", "task", name, "panic", r, "stack", string(debug.Stack()))
		}
	}()
	f()
	return false
}
