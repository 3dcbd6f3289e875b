//go:build !ringdebug

package ring

const debug = false
