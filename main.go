package main

import "ICSLogPump/cmd"

func main() {
	cmd.Execute()
}
