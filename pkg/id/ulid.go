package id

import (
	"github.com/oklog/ulid/v2"
)

/**
 * @author: gagral.x@gmail.com
 * @time: 2024/9/16 21:53
 * @file: ulid.go
 * @description: ulid
 */

// GetUlid 生成单调递增的 ULID，并发安全
func GetUlid() string {
	return ulid.Make().String()
}

// ParseUlid 校验字符串是否为合法 ULID
func ParseUlid(s string) (ulid.ULID, error) {
	return ulid.ParseStrict(s)
}
