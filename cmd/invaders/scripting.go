// scripting.go - a Lua console that can drive the cabinet from a
// script file instead of a human: set_input, step, run_frame,
// get_port, get_highscore, frame_hash, disasm.

package main

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/voidwire/invaders-core"
)

func runScript(path string, cpu *invaders.CPU, mem *invaders.Memory, io *invaders.MachineIO, sched *invaders.Scheduler) error {
	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("set_input", L.NewFunction(func(L *lua.LState) int {
		port := L.CheckInt(1)
		mask := byte(L.CheckInt(2))
		set := L.CheckBool(3)
		io.SetInputBit(port, mask, set)
		return 0
	}))

	L.SetGlobal("get_port", L.NewFunction(func(L *lua.LState) int {
		port := byte(L.CheckInt(1))
		L.Push(lua.LNumber(io.In(port)))
		return 1
	}))

	L.SetGlobal("get_highscore", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(bcdToDecimal(mem.ReadHighScore()) * 10))
		return 1
	}))

	L.SetGlobal("step", L.NewFunction(func(L *lua.LState) int {
		n := 1
		if L.GetTop() >= 1 {
			n = L.CheckInt(1)
		}
		for i := 0; i < n; i++ {
			if _, err := cpu.Step(); err != nil {
				L.RaiseError("%v", err)
				return 0
			}
		}
		return 0
	}))

	L.SetGlobal("run_frame", L.NewFunction(func(L *lua.LState) int {
		sched.RunFrame()
		L.Push(lua.LNumber(latestFrame().Hash()))
		return 1
	}))

	L.SetGlobal("frame_hash", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(latestFrame().Hash()))
		return 1
	}))

	L.SetGlobal("disasm", L.NewFunction(func(L *lua.LState) int {
		pc := uint16(L.CheckInt(1))
		text, length := invaders.Disassemble(mem, pc)
		L.Push(lua.LString(text))
		L.Push(lua.LNumber(length))
		return 2
	}))

	L.SetGlobal("print_status", L.NewFunction(func(L *lua.LState) int {
		fmt.Printf("PC=0x%04X A=0x%02X state=%d\n", cpu.PC(), cpu.A, cpu.State())
		return 0
	}))

	L.SetGlobal("screenshot", L.NewFunction(func(L *lua.LState) int {
		path := L.CheckString(1)
		scale := 1
		if L.GetTop() >= 2 {
			scale = L.CheckInt(2)
		}
		if err := SaveScreenshot(latestFrame(), path, scale); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))

	return L.DoFile(path)
}
