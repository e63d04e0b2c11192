// picasso 离线渲染工具：读取 YAML 日程快照，输出 picasso 布局
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := SetupCommands(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
