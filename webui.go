package main

// webUIHTML is the embedded web interface. Brand tokens (__PRIMARY__ and
// friends) are substituted by renderIndexHTML before serving.
const webUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>__WINDOW_TITLE__</title>
    <link rel="icon" type="image/svg+xml" href="__LOGO__">
    <style>
        __FONT_IMPORT__
        :root {
            --primary: __PRIMARY__;
            --primary-dark: __PRIMARY_DARK__;
            --bg: __BG__;
            --card-bg: __CARD_BG__;
            --text: __TEXT__;
            --text-muted: __TEXT_MUTED__;
            --border: __BORDER__;
        }
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: __FONT_FAMILY__;
            background: var(--bg);
            color: var(--text);
            line-height: 1.6;
        }
        .header {
            background: linear-gradient(135deg, var(--primary) 0%, var(--primary-dark) 100%);
            color: white;
            padding: 1.5rem 2rem;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
            display: flex;
            align-items: center;
            gap: 1rem;
        }
        .header img { width: 40px; height: 40px; }
        .header h1 { font-size: 1.5rem; font-weight: 600; }
        .header p { opacity: 0.9; font-size: 0.875rem; }
        .container {
            display: flex;
            min-height: calc(100vh - 88px);
        }
        .config-panel {
            width: 340px;
            min-width: 340px;
            background: var(--card-bg);
            border-right: 1px solid var(--border);
            padding: 1rem;
        }
        .results-panel {
            flex: 1;
            overflow-y: auto;
            padding: 1rem 1.5rem;
        }
        @media (max-width: 900px) {
            .container { flex-direction: column; }
            .config-panel { width: 100%; min-width: 100%; border-right: none; }
        }
        .card {
            background: var(--card-bg);
            border: 1px solid var(--border);
            border-radius: 8px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
            padding: 1rem;
            margin-bottom: 1rem;
        }
        .card h2 {
            font-size: 0.95rem;
            font-weight: 600;
            margin-bottom: 0.75rem;
            color: var(--primary);
        }
        .form-group { margin-bottom: 0.75rem; }
        .form-group label {
            display: block;
            font-size: 0.8rem;
            font-weight: 500;
            margin-bottom: 0.25rem;
        }
        .form-group input, .form-group select {
            width: 100%;
            padding: 0.5rem;
            border: 1px solid var(--border);
            border-radius: 6px;
            font-size: 0.875rem;
            background: var(--bg);
            color: var(--text);
        }
        .btn {
            display: block;
            width: 100%;
            background: var(--primary);
            color: white;
            border: none;
            border-radius: 6px;
            padding: 0.6rem 1rem;
            font-size: 0.9rem;
            font-weight: 600;
            cursor: pointer;
        }
        .btn:hover { background: var(--primary-dark); }
        .btn-row { display: flex; gap: 0.5rem; margin-top: 0.75rem; }
        .btn.secondary {
            background: transparent;
            color: var(--primary);
            border: 1px solid var(--primary);
        }
        .warning {
            display: none;
            background: #fef3c7;
            color: #92400e;
            border: 1px solid #fcd34d;
            border-radius: 6px;
            padding: 0.75rem 1rem;
            margin-bottom: 1rem;
            font-size: 0.875rem;
        }
        table {
            width: 100%;
            border-collapse: collapse;
            font-size: 0.875rem;
        }
        th, td {
            padding: 0.5rem;
            text-align: right;
            border-bottom: 1px solid var(--border);
        }
        th { font-weight: 600; color: var(--text-muted); }
        th:first-child, td:first-child { text-align: left; }
        .chart-img { width: 100%; height: auto; border-radius: 6px; }
        .placeholder {
            color: var(--text-muted);
            font-size: 0.875rem;
            padding: 2rem 0;
            text-align: center;
        }
        .footer {
            color: var(--text-muted);
            font-size: 0.75rem;
            text-align: center;
            padding: 1rem;
        }
    </style>
</head>
<body>
    <div class="header">
        <img src="__LOGO__" alt="">
        <div>
            <h1>__BRAND_NAME__</h1>
            <p>__TAGLINE__</p>
        </div>
    </div>
    <div class="container">
        <div class="config-panel">
            <div class="card">
                <h2>Investment Parameters</h2>
                <div class="form-group">
                    <label for="initial">Initial Investment (__CURRENCY__)</label>
                    <input type="number" id="initial" min="0" step="1000" value="__DEFAULT_INITIAL__">
                </div>
                <div class="form-group">
                    <label for="monthly">Starting Monthly Installment (__CURRENCY__)</label>
                    <input type="number" id="monthly" min="0" step="100" value="__DEFAULT_MONTHLY__">
                </div>
                <div class="form-group">
                    <label for="escalation">Annual Installment Escalation (%)</label>
                    <input type="number" id="escalation" min="0" step="0.5" value="__DEFAULT_ESCALATION__">
                </div>
                <div class="form-group">
                    <label for="profile">Select Return Profile</label>
                    <select id="profile">__PROFILE_OPTIONS__</select>
                </div>
                <button class="btn" onclick="calculate()">Calculate</button>
                <div class="btn-row">
                    <button class="btn secondary" onclick="exportCSV()">CSV</button>
                    <button class="btn secondary" onclick="exportPDF()">PDF</button>
                </div>
            </div>
        </div>
        <div class="results-panel">
            <div class="warning" id="warning"></div>
            <div id="results">
                <div class="placeholder">Enter your investment parameters and press Calculate.</div>
            </div>
        </div>
    </div>
    <div class="footer">Projections assume a constant annual return over 30 years and are not guarantees of future performance.</div>

    <script>
        function readInputs() {
            return {
                initial_investment: parseFloat(document.getElementById('initial').value) || 0,
                monthly_installment: parseFloat(document.getElementById('monthly').value) || 0,
                escalation_rate: (parseFloat(document.getElementById('escalation').value) || 0) / 100,
                return_profile: document.getElementById('profile').value
            };
        }

        function queryString(req) {
            return 'initial=' + encodeURIComponent(req.initial_investment) +
                '&monthly=' + encodeURIComponent(req.monthly_installment) +
                '&escalation=' + encodeURIComponent(req.escalation_rate) +
                '&profile=' + encodeURIComponent(req.return_profile);
        }

        function formatMoney(val) {
            return '__CURRENCY__ ' + val.toLocaleString('en-ZA', {
                minimumFractionDigits: 2,
                maximumFractionDigits: 2
            });
        }

        function showWarning(message) {
            var warning = document.getElementById('warning');
            warning.textContent = message;
            warning.style.display = 'block';
            document.getElementById('results').innerHTML = '';
        }

        function hideWarning() {
            document.getElementById('warning').style.display = 'none';
        }

        async function calculate() {
            var req = readInputs();

            var resp = await fetch('/api/project', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify(req)
            });
            var data = await resp.json();

            if (!data.success) {
                showWarning(data.error);
                return;
            }

            hideWarning();
            renderResults(data, queryString(req));
        }

        function renderResults(data, qs) {
            var html = '';

            // Milestone summary table + growth chart
            html += '<div class="card">';
            html += '<h2>Summary: ' + data.profile_label + '</h2>';
            html += '<table><thead><tr><th>Year</th><th>Total Amount</th></tr></thead><tbody>';
            data.milestones.forEach(function (snap) {
                html += '<tr><td>' + snap.year + '</td><td>' + formatMoney(snap.total_amount) + '</td></tr>';
            });
            html += '</tbody></table>';
            html += '</div>';

            html += '<div class="card">';
            html += '<h2>Milestone Growth Projection</h2>';
            html += '<img class="chart-img" src="/api/chart/milestones?' + qs + '" alt="Milestone growth chart">';
            html += '</div>';

            // 5-year stacked breakdown
            html += '<div class="card">';
            html += '<h2>5-Year Interval Breakdown: Capital vs. Investment Return</h2>';
            html += '<img class="chart-img" src="/api/chart/breakdown?' + qs + '" alt="Capital vs return chart">';
            html += '<table><thead><tr><th>Year</th><th>Total Capital Contributed</th><th>Investment Return</th><th>Total Amount</th></tr></thead><tbody>';
            data.breakdown.forEach(function (snap) {
                html += '<tr><td>' + snap.year + '</td>' +
                    '<td>' + formatMoney(snap.total_capital_contributed) + '</td>' +
                    '<td>' + formatMoney(snap.investment_return) + '</td>' +
                    '<td>' + formatMoney(snap.total_amount) + '</td></tr>';
            });
            html += '</tbody></table>';
            html += '</div>';

            document.getElementById('results').innerHTML = html;
        }

        function exportCSV() {
            var req = readInputs();
            if (req.initial_investment === 0 && req.monthly_installment === 0) {
                showWarning('Please enter a value greater than 0 for either the Initial Investment or the Monthly Installment.');
                return;
            }
            window.location.href = '/api/export-csv?' + queryString(req);
        }

        function exportPDF() {
            var req = readInputs();
            if (req.initial_investment === 0 && req.monthly_installment === 0) {
                showWarning('Please enter a value greater than 0 for either the Initial Investment or the Monthly Installment.');
                return;
            }
            window.location.href = '/api/download-pdf?' + queryString(req);
        }
    </script>
</body>
</html>
`
