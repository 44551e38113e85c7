/*
 * @author: sun977
 * @date: 2026.08.29
 * @description: 控制台CLI入口
 * @func: 执行根命令
 */

package main

func main() {
	Execute()
}
