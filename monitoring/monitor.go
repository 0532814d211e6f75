// Package monitoring turns a running timeline service into a small HTTP
// server for inspection and manual control.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/wristlab/timeline/service"
)

// Monitor exposes the scheduling service over HTTP.
type Monitor struct {
	refresher  service.Refresher
	clock      service.Clock
	services   []service.Service
	portNumber int
	openInWeb  bool
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{
		clock: service.WallClock{},
	}
}

// WithPortNumber sets the port number of the monitor. Port 0 asks for a
// random port; privileged or reserved ports below 1000 fall back to a
// random one with a warning.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber != 0 && portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowserOnStart makes the monitor open the API root in the default
// browser once the server is up.
func (m *Monitor) WithBrowserOnStart() *Monitor {
	m.openInWeb = true
	return m
}

// RegisterScheduler registers the scheduler to control.
func (m *Monitor) RegisterScheduler(r service.Refresher) {
	m.refresher = r
}

// RegisterClock registers the clock the service runs on.
func (m *Monitor) RegisterClock(c service.Clock) {
	m.clock = c
}

// RegisterService registers a sub-service to be inspected.
func (m *Monitor) RegisterService(s service.Service) {
	m.services = append(m.services, s)
}

// StartServer starts the monitor as a web server.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()

	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/refresh", m.refresh)
	r.HandleFunc("/api/services", m.listServices)
	r.HandleFunc("/api/service/{name}", m.listServiceDetails)
	r.HandleFunc("/api/resource", m.listResources)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring timeline service with %s\n", url)

	if m.openInWeb {
		_ = browser.OpenURL(url + "/api/services")
	}

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "{\"now\":%q}", m.clock.Now().Format(time.RFC3339Nano))
}

func (m *Monitor) refresh(w http.ResponseWriter, _ *http.Request) {
	if m.refresher == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	m.refresher.RequestRefresh()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) listServices(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "[")
	for i, s := range m.services {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "%q", s.Name())
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) listServiceDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	svc := m.findServiceOr404(w, name)
	if svc == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(svc)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

func (m *Monitor) findServiceOr404(
	w http.ResponseWriter,
	name string,
) service.Service {
	for _, s := range m.services {
		if s.Name() == name {
			return s
		}
	}

	w.WriteHeader(http.StatusNotFound)

	return nil
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memorySize, err := proc.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
