//go:build windows

package main

// 双击启动时不弹出控制台窗口；从终端启动时保留输出
import _ "github.com/ebitengine/hideconsole"
