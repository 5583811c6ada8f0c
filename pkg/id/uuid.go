package id

import "github.com/google/uuid"

/**
 * @author: HuaiAn xu
 * @date: 2024-05-02 00:34:31
 * @file: uuid.go
 * @description: id util
 */

// GetUUID generates a new UUID
func GetUUID() string {
	return uuid.NewString()
}

