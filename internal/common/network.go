package common

import "net"

// GetLocalIPs returns the addresses the server can be reached on: localhost first,
// then the IPv4 address of every interface that is up
func GetLocalIPs() []string {
	ips := []string{"localhost", "127.0.0.1"}

	interfaces, err := net.Interfaces()
	if err != nil {
		return ips
	}

	for _, i := range interfaces {
		// Skip loopback, down, and point-to-point interfaces
		if i.Flags&net.FlagLoopback != 0 ||
			i.Flags&net.FlagUp == 0 ||
			i.Flags&net.FlagPointToPoint != 0 {
			continue
		}

		addrs, err := i.Addrs()
		if err != nil {
			continue
		}
		ips = append(ips, IPv4Addrs(addrs)...)
	}
	return ips
}

// IPv4Addrs keeps the non-loopback IPv4 addresses of addrs
func IPv4Addrs(addrs []net.Addr) []string {
	var ips []string
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() || ipnet.IP.To4() == nil {
			continue
		}
		ips = append(ips, ipnet.IP.String())
	}
	return ips
}
